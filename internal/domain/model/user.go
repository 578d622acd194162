package model

import "time"

// User é a representação de domínio de um usuário do painel
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	Password  string    `json:"-"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserRef é o recorte de um usuário embutido em outros registros.
// É uma cópia congelada no momento da criação, nunca uma referência viva.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Ref retorna o recorte do usuário para ser embutido em um agendamento
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserEntity é a representação de banco de dados de um usuário
type UserEntity struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"not null;size:255"`
	Email     string    `gorm:"uniqueIndex;not null;size:100"`
	CPF       string    `gorm:"uniqueIndex;not null;size:11"`
	Password  string    `gorm:"not null"`
	Token     string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time
}

// TableName define o nome da tabela
func (UserEntity) TableName() string {
	return "users"
}

// ToModel converte a entidade para o modelo de domínio
func (e *UserEntity) ToModel() *User {
	return &User{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		CPF:       e.CPF,
		Password:  e.Password,
		Token:     e.Token,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// NewUserEntity converte o modelo de domínio para a entidade de banco
func NewUserEntity(u *User) *UserEntity {
	return &UserEntity{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CPF:       u.CPF,
		Password:  u.Password,
		Token:     u.Token,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
