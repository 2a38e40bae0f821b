package Store

import (
	"sync"

	"Pulse/Models"
)

// EmployeeRoster is the in-memory employee directory backing the management
// views. Populated by the seed loader at boot; reports reference employees by
// ID without the store validating membership.
type EmployeeRoster struct {
	mu        sync.RWMutex
	employees []Models.Employee
}

func NewEmployeeRoster() *EmployeeRoster {
	return &EmployeeRoster{employees: []Models.Employee{}}
}

func (r *EmployeeRoster) Add(employee Models.Employee) {
	r.mu.Lock()
	r.employees = append(r.employees, employee)
	r.mu.Unlock()
}

func (r *EmployeeRoster) All() []Models.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Models.Employee, len(r.employees))
	copy(out, r.employees)
	return out
}

func (r *EmployeeRoster) Find(id string) (Models.Employee, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, employee := range r.employees {
		if employee.ID == id {
			return employee, true
		}
	}
	return Models.Employee{}, false
}
