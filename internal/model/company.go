package model

// Department is a row of the departments table.
type Department struct {
	ID        int
	Name      string
	Budget    float64
	ManagerID int
}

// Employee is a row of the employees table.
type Employee struct {
	ID         int
	Name       string
	Department string
	Salary     float64
	HireDate   string
	Email      string
}

// Project is a row of the projects table.
type Project struct {
	ID         int
	Name       string
	Department string
	Budget     float64
	StartDate  string
	Status     string
}
