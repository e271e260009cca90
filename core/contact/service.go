package contact

type (
	// Repository produces the full contact set available to the system.
	Repository interface {
		// AllContacts returns every known contact, ordered by source file then row.
		AllContacts() ([]Contact, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) All() ([]Contact, error) {
	return svc.repo.AllContacts()
}

func (svc *Service) Filter(filter QueryFilter) ([]Contact, error) {
	contacts, err := svc.repo.AllContacts()
	if err != nil {
		return nil, err
	}
	return Filter(contacts, filter), nil
}

// Years returns the distinct year labels on record, in first-seen order.
func (svc *Service) Years() ([]string, error) {
	return svc.distinct(func(c Contact) string { return c.Year })
}

// Departments returns the distinct department labels on record, in first-seen order.
func (svc *Service) Departments() ([]string, error) {
	return svc.distinct(func(c Contact) string { return c.Department })
}

func (svc *Service) distinct(field func(Contact) string) ([]string, error) {
	contacts, err := svc.repo.AllContacts()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(contacts))
	vals := make([]string, 0)
	for _, c := range contacts {
		if val := field(c); !seen[val] {
			seen[val] = true
			vals = append(vals, val)
		}
	}
	return vals, nil
}
