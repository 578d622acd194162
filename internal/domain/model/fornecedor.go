package model

import "time"

// Fornecedor é a representação de domínio de um fornecedor
type Fornecedor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Contact string `json:"contact"`
}

// FornecedorRef é o recorte de um fornecedor embutido em um agendamento,
// congelado no momento da criação.
type FornecedorRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Ref retorna o recorte do fornecedor para ser embutido em um agendamento
func (f *Fornecedor) Ref() FornecedorRef {
	return FornecedorRef{ID: f.ID, Name: f.Name, Contact: f.Contact}
}

// FornecedorEntity é a representação de banco de dados de um fornecedor.
// CreatedAt existe apenas para preservar a ordem de inserção nas listagens.
type FornecedorEntity struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"not null;size:255"`
	CNPJ      string    `gorm:"not null;size:14"`
	Contact   string    `gorm:"not null;size:9"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName define o nome da tabela
func (FornecedorEntity) TableName() string {
	return "fornecedores"
}

// ToModel converte a entidade para o modelo de domínio
func (e *FornecedorEntity) ToModel() *Fornecedor {
	return &Fornecedor{ID: e.ID, Name: e.Name, CNPJ: e.CNPJ, Contact: e.Contact}
}

// NewFornecedorEntity converte o modelo de domínio para a entidade de banco
func NewFornecedorEntity(f *Fornecedor) *FornecedorEntity {
	return &FornecedorEntity{ID: f.ID, Name: f.Name, CNPJ: f.CNPJ, Contact: f.Contact}
}
