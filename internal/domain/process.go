package domain

// Process is one entry in the fixed practice workload. The set is static:
// it is what every timeline page and the exported report describe.
type Process struct {
	Letter  rune
	Arrival int
	Service int
}

// Workload returns the five processes used by every practice session.
func Workload() []Process {
	return []Process{
		{Letter: 'A', Arrival: 0, Service: 4},
		{Letter: 'B', Arrival: 2, Service: 4},
		{Letter: 'C', Arrival: 4, Service: 4},
		{Letter: 'D', Arrival: 6, Service: 4},
		{Letter: 'E', Arrival: 8, Service: 4},
	}
}

// Horizon is the number of discrete time units a timeline spans: the sum of
// all service times.
func Horizon(processes []Process) int {
	total := 0
	for _, p := range processes {
		total += p.Service
	}
	return total
}

// Letters returns the allow-list of letters a timeline may contain.
func Letters(processes []Process) []rune {
	letters := make([]rune, 0, len(processes))
	for _, p := range processes {
		letters = append(letters, p.Letter)
	}
	return letters
}
