package customer

import (
	"customer-service/internal/pkg/apperrors"
	"fmt"
)

// Representation is the API-facing shape of a Customer. The same shape is
// used for inbound requests and outbound responses.
type Representation struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Mapper translates between the persisted Customer and its Representation.
// It holds no state.
type Mapper struct{}

func NewMapper() Mapper {
	return Mapper{}
}

// ToRepresentation fails with ErrInvalidArgument on nil input. A nil
// customer is a programming error, not a missing-resource condition.
func (Mapper) ToRepresentation(cust *Customer) (Representation, error) {
	if cust == nil {
		return Representation{}, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	return Representation{
		ID:        cust.ID,
		FirstName: cust.FirstName,
		LastName:  cust.LastName,
		Email:     cust.Email,
	}, nil
}

func (Mapper) ToEntity(rep Representation) Customer {
	return Customer{
		ID:        rep.ID,
		FirstName: rep.FirstName,
		LastName:  rep.LastName,
		Email:     rep.Email,
	}
}

func (m Mapper) ToRepresentationList(customers []*Customer) ([]Representation, error) {
	reps := make([]Representation, 0, len(customers))
	for _, cust := range customers {
		rep, err := m.ToRepresentation(cust)
		if err != nil {
			return nil, err
		}
		reps = append(reps, rep)
	}
	return reps, nil
}
