package model

import "time"

// Agendamento é a representação de domínio de um agendamento de compra/entrega.
// Os recortes UserCreated, UserUpdated e Fornecedor são cópias feitas na
// criação; alterações posteriores nos registros de origem não se propagam.
type Agendamento struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Quantity    int           `json:"quantity"`
	DataEntrega time.Time     `json:"dataEntrega"`
	XML         string        `json:"xml"`
	Commits     string        `json:"commits"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	UserCreated UserRef       `json:"userCreated"`
	UserUpdated UserRef       `json:"userUpdated"`
	Fornecedor  FornecedorRef `json:"fornecedor"`

	// Campos achatados do criador, duplicados para consulta direta
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// AgendamentoEntity é a representação de banco de dados de um agendamento.
// Os recortes são achatados em colunas próprias para manter a cópia congelada
// sem chave estrangeira.
type AgendamentoEntity struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Name        string    `gorm:"not null;size:255"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	DataEntrega time.Time `gorm:"column:data_entrega"`
	XML         string    `gorm:"column:xml;type:text"`
	Commits     string    `gorm:"type:text"`
	Status      string    `gorm:"size:50"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time

	CreatedByID    string `gorm:"column:created_by_id;type:uuid"`
	CreatedByName  string `gorm:"column:created_by_name"`
	CreatedByEmail string `gorm:"column:created_by_email"`
	UpdatedByID    string `gorm:"column:updated_by_id;type:uuid"`
	UpdatedByName  string `gorm:"column:updated_by_name"`
	UpdatedByEmail string `gorm:"column:updated_by_email"`

	FornecedorID      string `gorm:"column:fornecedor_id;type:uuid"`
	FornecedorName    string `gorm:"column:fornecedor_name"`
	FornecedorContact string `gorm:"column:fornecedor_contact"`
}

// TableName define o nome da tabela
func (AgendamentoEntity) TableName() string {
	return "agendamentos"
}

// ToModel converte a entidade para o modelo de domínio
func (e *AgendamentoEntity) ToModel() *Agendamento {
	return &Agendamento{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Quantity:    e.Quantity,
		DataEntrega: e.DataEntrega,
		XML:         e.XML,
		Commits:     e.Commits,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		UserCreated: UserRef{ID: e.CreatedByID, Name: e.CreatedByName, Email: e.CreatedByEmail},
		UserUpdated: UserRef{ID: e.UpdatedByID, Name: e.UpdatedByName, Email: e.UpdatedByEmail},
		Fornecedor:  FornecedorRef{ID: e.FornecedorID, Name: e.FornecedorName, Contact: e.FornecedorContact},
		UserID:      e.CreatedByID,
		UserName:    e.CreatedByName,
		UserEmail:   e.CreatedByEmail,
	}
}

// NewAgendamentoEntity converte o modelo de domínio para a entidade de banco
func NewAgendamentoEntity(a *Agendamento) *AgendamentoEntity {
	return &AgendamentoEntity{
		ID:                a.ID,
		Name:              a.Name,
		Description:       a.Description,
		Price:             a.Price,
		Quantity:          a.Quantity,
		DataEntrega:       a.DataEntrega,
		XML:               a.XML,
		Commits:           a.Commits,
		Status:            a.Status,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
		CreatedByID:       a.UserCreated.ID,
		CreatedByName:     a.UserCreated.Name,
		CreatedByEmail:    a.UserCreated.Email,
		UpdatedByID:       a.UserUpdated.ID,
		UpdatedByName:     a.UserUpdated.Name,
		UpdatedByEmail:    a.UserUpdated.Email,
		FornecedorID:      a.Fornecedor.ID,
		FornecedorName:    a.Fornecedor.Name,
		FornecedorContact: a.Fornecedor.Contact,
	}
}
