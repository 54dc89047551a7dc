package billing

import (
	"regexp"

	"github.com/invoicing/backend/internal/domain/shared"
)

// Client represents an invoiced party identified by its RUC.
// It is the aggregate root for client-related operations.
type Client struct {
	shared.BaseAggregateRoot
	RUC       string
	LegalName string
	Address   string
	Email     string
}

// NewClient creates a new client with required fields
func NewClient(ruc, legalName string) (*Client, error) {
	if err := validateRUC(ruc); err != nil {
		return nil, err
	}
	if err := validateLegalName(legalName); err != nil {
		return nil, err
	}

	client := &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RUC:               ruc,
		LegalName:         legalName,
	}

	client.AddDomainEvent(NewClientCreatedEvent(client))

	return client, nil
}

// SetContact sets the client's optional address and email
func (c *Client) SetContact(address, email string) error {
	if address != "" && len(address) > 200 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 200 characters")
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	c.Address = address
	c.Email = email
	c.Touch()

	return nil
}

// rucPattern matches the 11-digit taxpayer identification number
var rucPattern = regexp.MustCompile(`^\d{11}$`)

func validateRUC(ruc string) error {
	if ruc == "" {
		return shared.NewDomainError("INVALID_RUC", "RUC cannot be empty")
	}
	if !rucPattern.MatchString(ruc) {
		return shared.NewDomainError("INVALID_RUC", "RUC must be exactly 11 digits")
	}
	return nil
}

func validateLegalName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Legal name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Legal name cannot exceed 200 characters")
	}
	return nil
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if len(email) > 120 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 120 characters")
	}
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
