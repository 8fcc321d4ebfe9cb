package seed

import "multi-agent-assistant/internal/model"

var departments = []model.Department{
	{ID: 1, Name: "Engineering", Budget: 500000.00, ManagerID: 1},
	{ID: 2, Name: "Marketing", Budget: 200000.00, ManagerID: 4},
	{ID: 3, Name: "Sales", Budget: 300000.00, ManagerID: 6},
	{ID: 4, Name: "Human Resources", Budget: 150000.00, ManagerID: 8},
	{ID: 5, Name: "Finance", Budget: 250000.00, ManagerID: 10},
}

var employees = []model.Employee{
	{ID: 1, Name: "Alice Johnson", Department: "Engineering", Salary: 95000.00, HireDate: "2020-01-15", Email: "alice@techvision.com"},
	{ID: 2, Name: "Bob Smith", Department: "Engineering", Salary: 85000.00, HireDate: "2021-03-20", Email: "bob@techvision.com"},
	{ID: 3, Name: "Carol Williams", Department: "Engineering", Salary: 75000.00, HireDate: "2022-06-10", Email: "carol@techvision.com"},
	{ID: 4, Name: "David Brown", Department: "Marketing", Salary: 70000.00, HireDate: "2019-08-01", Email: "david@techvision.com"},
	{ID: 5, Name: "Eve Davis", Department: "Marketing", Salary: 65000.00, HireDate: "2023-01-05", Email: "eve@techvision.com"},
	{ID: 6, Name: "Frank Miller", Department: "Sales", Salary: 80000.00, HireDate: "2018-11-20", Email: "frank@techvision.com"},
	{ID: 7, Name: "Grace Lee", Department: "Sales", Salary: 72000.00, HireDate: "2021-07-15", Email: "grace@techvision.com"},
	{ID: 8, Name: "Henry Wilson", Department: "Human Resources", Salary: 68000.00, HireDate: "2020-04-10", Email: "henry@techvision.com"},
	{ID: 9, Name: "Ivy Chen", Department: "Human Resources", Salary: 62000.00, HireDate: "2022-09-01", Email: "ivy@techvision.com"},
	{ID: 10, Name: "Jack Taylor", Department: "Finance", Salary: 88000.00, HireDate: "2019-02-28", Email: "jack@techvision.com"},
	{ID: 11, Name: "Karen White", Department: "Finance", Salary: 78000.00, HireDate: "2021-05-15", Email: "karen@techvision.com"},
	{ID: 12, Name: "Leo Martinez", Department: "Engineering", Salary: 90000.00, HireDate: "2020-10-01", Email: "leo@techvision.com"},
}

var projects = []model.Project{
	{ID: 1, Name: "Website Redesign", Department: "Engineering", Budget: 50000.00, StartDate: "2024-01-01", Status: "In Progress"},
	{ID: 2, Name: "Mobile App v2", Department: "Engineering", Budget: 75000.00, StartDate: "2024-02-15", Status: "In Progress"},
	{ID: 3, Name: "Q1 Marketing Campaign", Department: "Marketing", Budget: 30000.00, StartDate: "2024-01-10", Status: "Completed"},
	{ID: 4, Name: "Sales Training Program", Department: "Sales", Budget: 15000.00, StartDate: "2024-03-01", Status: "Planning"},
	{ID: 5, Name: "HR System Upgrade", Department: "Human Resources", Budget: 25000.00, StartDate: "2024-02-01", Status: "In Progress"},
	{ID: 6, Name: "Annual Budget Review", Department: "Finance", Budget: 10000.00, StartDate: "2024-01-01", Status: "Completed"},
}

// eventTemplate is an event relative to the seeding day.
type eventTemplate struct {
	dayOffset int
	event     model.Event
}

var eventTemplates = []eventTemplate{
	{0, model.Event{ID: 1, Name: "Morning Yoga in the Park", Type: model.EventTypeOutdoor, Description: "Start your day with outdoor yoga", Location: "Central Park", Time: "07:00"}},
	{0, model.Event{ID: 2, Name: "Tech Meetup", Type: model.EventTypeIndoor, Description: "Monthly tech community gathering", Location: "Innovation Hub", Time: "18:00"}},
	{0, model.Event{ID: 3, Name: "Food Festival", Type: model.EventTypeOutdoor, Description: "Local food vendors and live music", Location: "Downtown Square", Time: "11:00"}},

	{1, model.Event{ID: 4, Name: "Art Exhibition", Type: model.EventTypeIndoor, Description: "Contemporary art showcase", Location: "City Art Museum", Time: "10:00"}},
	{1, model.Event{ID: 5, Name: "Beach Volleyball Tournament", Type: model.EventTypeOutdoor, Description: "Amateur volleyball competition", Location: "Sunny Beach", Time: "09:00"}},
	{1, model.Event{ID: 6, Name: "Cooking Workshop", Type: model.EventTypeIndoor, Description: "Learn to cook Italian cuisine", Location: "Culinary School", Time: "14:00"}},

	{2, model.Event{ID: 7, Name: "Hiking Trail Adventure", Type: model.EventTypeOutdoor, Description: "Guided nature hike", Location: "Mountain Trail", Time: "08:00"}},
	{2, model.Event{ID: 8, Name: "Movie Night", Type: model.EventTypeIndoor, Description: "Classic film screening", Location: "Grand Cinema", Time: "19:00"}},
	{2, model.Event{ID: 9, Name: "Farmers Market", Type: model.EventTypeOutdoor, Description: "Fresh produce and crafts", Location: "Town Square", Time: "07:00"}},

	{3, model.Event{ID: 10, Name: "Photography Workshop", Type: model.EventTypeIndoor, Description: "Learn landscape photography", Location: "Photo Studio", Time: "10:00"}},
	{3, model.Event{ID: 11, Name: "Outdoor Concert", Type: model.EventTypeOutdoor, Description: "Live jazz performance", Location: "Amphitheater", Time: "18:00"}},
	{3, model.Event{ID: 12, Name: "Book Club Meeting", Type: model.EventTypeIndoor, Description: "Monthly book discussion", Location: "City Library", Time: "15:00"}},

	{4, model.Event{ID: 13, Name: "Cycling Tour", Type: model.EventTypeOutdoor, Description: "City bike tour", Location: "Bike Station", Time: "09:00"}},
	{4, model.Event{ID: 14, Name: "Board Game Night", Type: model.EventTypeIndoor, Description: "Strategy games and snacks", Location: "Game Cafe", Time: "17:00"}},

	{5, model.Event{ID: 15, Name: "Sunrise Meditation", Type: model.EventTypeOutdoor, Description: "Guided meditation session", Location: "Hilltop Park", Time: "06:00"}},
	{5, model.Event{ID: 16, Name: "Wine Tasting", Type: model.EventTypeIndoor, Description: "Sample local wines", Location: "Vineyard Estate", Time: "16:00"}},

	{6, model.Event{ID: 17, Name: "Marathon", Type: model.EventTypeOutdoor, Description: "Annual city marathon", Location: "City Center", Time: "07:00"}},
	{6, model.Event{ID: 18, Name: "Science Fair", Type: model.EventTypeIndoor, Description: "Student science projects", Location: "Convention Center", Time: "10:00"}},
}
