package model

import "time"

// Funcionario é a representação de domínio de um funcionário
type Funcionario struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Document string  `json:"document"`
	Salary   float64 `json:"salary"`
	Manager  string  `json:"manager"`
}

// FuncionarioEntity é a representação de banco de dados de um funcionário
type FuncionarioEntity struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"not null;size:255"`
	Document  string    `gorm:"not null;size:11"`
	Salary    float64   `gorm:"not null"`
	Manager   string    `gorm:"size:11"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName define o nome da tabela
func (FuncionarioEntity) TableName() string {
	return "funcionarios"
}

// ToModel converte a entidade para o modelo de domínio
func (e *FuncionarioEntity) ToModel() *Funcionario {
	return &Funcionario{ID: e.ID, Name: e.Name, Document: e.Document, Salary: e.Salary, Manager: e.Manager}
}

// NewFuncionarioEntity converte o modelo de domínio para a entidade de banco
func NewFuncionarioEntity(f *Funcionario) *FuncionarioEntity {
	return &FuncionarioEntity{ID: f.ID, Name: f.Name, Document: f.Document, Salary: f.Salary, Manager: f.Manager}
}
