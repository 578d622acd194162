package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/guih-henriqueee/agendamentos-api/internal/auth"
)

func main() {
	var (
		email    string
		id       string
		cpf      string
		validate string
	)

	flag.StringVar(&email, "email", "", "E-mail do usuário")
	flag.StringVar(&id, "id", "", "ID do usuário")
	flag.StringVar(&cpf, "cpf", "", "CPF do usuário (11 dígitos)")
	flag.StringVar(&validate, "validate", "", "Token a validar contra os dados informados")
	flag.Parse()

	if email == "" || id == "" || cpf == "" {
		fmt.Println("Erro: email, id e cpf são obrigatórios.")
		fmt.Println("Uso: gentoken -email=<email> -id=<id> -cpf=<cpf> [-validate=<token>]")
		os.Exit(1)
	}

	codec := auth.NewCodec()

	if validate != "" {
		if codec.ValidateToken(validate, email, id, cpf) {
			fmt.Println("Token válido para os dados informados.")
			return
		}
		fmt.Println("Token inválido para os dados informados.")
		os.Exit(1)
	}

	token := codec.GenerateToken(email, id, cpf)

	fmt.Println("\nToken gerado:")
	fmt.Println("------------------------------------------")
	fmt.Println(token)
	fmt.Println("------------------------------------------")
	fmt.Printf("\nDetalhes do token:\n")
	fmt.Printf("E-mail: %s\n", email)
	fmt.Printf("ID: %s\n", id)
	fmt.Printf("CPF: %s\n", cpf)
	fmt.Println("\nValide o token via API:")
	fmt.Println("POST /auth/validate {\"token\", \"email\", \"id\", \"cpf\"}")
}
