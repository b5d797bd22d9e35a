package model

// seedLists is the dataset every new session starts with. Ids are fixed so
// that all sessions see the same seed ids.
var seedLists = []TodoList{
	{
		ID:    1,
		Title: "Work Todos",
		Todos: []Todo{
			{ID: 2, Title: "Get coffee", Done: true},
			{ID: 3, Title: "Chat with co-workers", Done: true},
			{ID: 4, Title: "Duck out of meeting", Done: false},
		},
	},
	{
		ID:    5,
		Title: "Home Todos",
		Todos: []Todo{
			{ID: 6, Title: "Feed the cats", Done: true},
			{ID: 7, Title: "Go to bed", Done: true},
			{ID: 8, Title: "Buy milk", Done: true},
			{ID: 9, Title: "Study for Launch School", Done: true},
		},
	},
	{
		ID:    10,
		Title: "Additional Todos",
		Todos: []Todo{},
	},
	{
		ID:    11,
		Title: "social todos",
		Todos: []Todo{
			{ID: 12, Title: "Go to Libby's birthday party", Done: false},
		},
	},
}

// SeedData returns a fresh deep copy of the default dataset together with
// the highest id it uses.
func SeedData() ([]TodoList, int64) {
	var last int64
	for _, list := range seedLists {
		last = max(last, list.ID)
		for _, todo := range list.Todos {
			last = max(last, todo.ID)
		}
	}
	return CloneTodoLists(seedLists), last
}
