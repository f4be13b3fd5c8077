package domain

import "time"

// Organization groups the clients and transactions of one owner.
type Organization struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ClientStatus is the commercial state of a client.
type ClientStatus string

const (
	ClientActive   ClientStatus = "ACTIVE"
	ClientInactive ClientStatus = "INACTIVE"
	ClientLead     ClientStatus = "LEAD"
)

// Client is a customer record inside an organization.
type Client struct {
	ID             string       `json:"id" bson:"_id"`
	OrganizationID string       `json:"organization_id" bson:"organization_id"`
	OwnerID        string       `json:"user_id" bson:"owner_id"`
	Name           string       `json:"name" bson:"name"`
	Description    string       `json:"description,omitempty" bson:"description,omitempty"`
	Email          string       `json:"email" bson:"email"`
	CPFCNPJ        string       `json:"cpf_cnpj,omitempty" bson:"cpf_cnpj,omitempty"`
	Phone          string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Status         ClientStatus `json:"status" bson:"status"`
	CreatedAt      time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at" bson:"updated_at"`
}

// TransactionType tells whether money came in or went out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Transaction is a financial movement booked against an organization.
type Transaction struct {
	ID             string          `json:"id" bson:"_id"`
	OrganizationID string          `json:"organization_id" bson:"organization_id"`
	OwnerID        string          `json:"user_id" bson:"owner_id"`
	Description    string          `json:"description" bson:"description"`
	Amount         float64         `json:"amount" bson:"amount"`
	Type           TransactionType `json:"type" bson:"type"`
	CreatedAt      time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" bson:"updated_at"`
}

// OwnerScope pins a lookup to a resource's owner and organization. A
// resource is only reachable through the scope it was created under.
type OwnerScope struct {
	OwnerID        string
	OrganizationID string
}

