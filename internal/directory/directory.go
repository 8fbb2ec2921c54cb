package directory

// Employee is a member of a department.
type Employee struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Role  string `json:"role" yaml:"role"`
}

// Department is a named group of employees. Member order is insertion order.
type Department struct {
	Name    string     `json:"name" yaml:"name"`
	Members []Employee `json:"members" yaml:"members"`
}

func (d Department) clone() Department {
	members := make([]Employee, len(d.Members))
	copy(members, d.Members)
	return Department{Name: d.Name, Members: members}
}
