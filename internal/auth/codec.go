// Package auth implementa o token de identidade do usuário.
//
// O token não é uma credencial criptográfica: é a codificação reversível de
// "cpf:email:id" em base64, verificada por reconstrução. Sem segredo e sem
// expiração — exatamente o contrato que os clientes do painel já consomem.
package auth

import (
	"encoding/base64"
	"strings"
)

// Codec emite e valida tokens de identidade
type Codec struct{}

// NewCodec cria um novo codificador de tokens
func NewCodec() *Codec {
	return &Codec{}
}

// GenerateToken gera o token de autenticação em base64 a partir do e-mail,
// do ID e do CPF do usuário
func (c *Codec) GenerateToken(email, id, cpf string) string {
	data := cpf + ":" + email + ":" + id
	return base64.StdEncoding.EncodeToString([]byte(data))
}

// ValidateToken verifica se o token corresponde exatamente ao e-mail, ID e
// CPF informados. Comparação literal, sensível a maiúsculas, sem
// normalização. Tokens malformados (base64 inválido ou número errado de
// campos) retornam false, nunca erro.
func (c *Codec) ValidateToken(token, email, id, cpf string) bool {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}

	parts := strings.Split(string(decoded), ":")
	if len(parts) != 3 {
		return false
	}

	return parts[0] == cpf && parts[1] == email && parts[2] == id
}
