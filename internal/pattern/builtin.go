package pattern

// Built-in patterns: the canonical still lifes, oscillators and spaceships.
// Coordinates are relative to each pattern's top-left corner.

func init() {
	Register(Pattern{
		ID:   "block",
		Name: "Block",
		Cells: []Cell{
			{0, 0}, {1, 0},
			{0, 1}, {1, 1},
		},
	})

	Register(Pattern{
		ID:   "blinker",
		Name: "Blinker",
		Cells: []Cell{
			{0, 0}, {1, 0}, {2, 0},
		},
	})

	Register(Pattern{
		ID:   "toad",
		Name: "Toad",
		Cells: []Cell{
			{1, 0}, {2, 0}, {3, 0},
			{0, 1}, {1, 1}, {2, 1},
		},
	})

	Register(Pattern{
		ID:   "beacon",
		Name: "Beacon",
		Cells: []Cell{
			{0, 0}, {1, 0},
			{0, 1},
			{3, 2},
			{2, 3}, {3, 3},
		},
	})

	Register(Pattern{
		ID:   "glider",
		Name: "Glider",
		Cells: []Cell{
			{1, 0},
			{2, 1},
			{0, 2}, {1, 2}, {2, 2},
		},
	})

	Register(Pattern{
		ID:   "lwss",
		Name: "Lightweight Spaceship",
		Cells: []Cell{
			{1, 0}, {4, 0},
			{0, 1},
			{0, 2}, {4, 2},
			{0, 3}, {1, 3}, {2, 3}, {3, 3},
		},
	})

	Register(Pattern{
		ID:   "pulsar",
		Name: "Pulsar",
		Cells: []Cell{
			{2, 0}, {3, 0}, {4, 0}, {8, 0}, {9, 0}, {10, 0},
			{0, 2}, {5, 2}, {7, 2}, {12, 2},
			{0, 3}, {5, 3}, {7, 3}, {12, 3},
			{0, 4}, {5, 4}, {7, 4}, {12, 4},
			{2, 5}, {3, 5}, {4, 5}, {8, 5}, {9, 5}, {10, 5},
			{2, 7}, {3, 7}, {4, 7}, {8, 7}, {9, 7}, {10, 7},
			{0, 8}, {5, 8}, {7, 8}, {12, 8},
			{0, 9}, {5, 9}, {7, 9}, {12, 9},
			{0, 10}, {5, 10}, {7, 10}, {12, 10},
			{2, 12}, {3, 12}, {4, 12}, {8, 12}, {9, 12}, {10, 12},
		},
	})

	Register(Pattern{
		ID:   "gosper-gun",
		Name: "Gosper Glider Gun",
		Cells: []Cell{
			{24, 0},
			{22, 1}, {24, 1},
			{12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
			{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3},
			{0, 4}, {1, 4}, {10, 4}, {16, 4}, {20, 4}, {21, 4},
			{0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5}, {22, 5}, {24, 5},
			{10, 6}, {16, 6}, {24, 6},
			{11, 7}, {15, 7},
			{12, 8}, {13, 8},
		},
	})
}
