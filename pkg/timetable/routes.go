package timetable

// Route is the ordered sequence of stop events for one train. The input
// order is authoritative - events are never reordered by time.
type Route struct {
	TrainNumber string
	Events      []StopEvent
}

// ExtractRoutes groups stop events by train number. Events keep their
// relative input order within each route and routes come out in the order
// their train was first seen. A single event route is valid, it just yields
// no edges later on.
func ExtractRoutes(events []StopEvent) []Route {
	var routes []Route
	routeIndex := map[string]int{}

	for _, event := range events {
		index, exists := routeIndex[event.TrainNumber]
		if !exists {
			index = len(routes)
			routeIndex[event.TrainNumber] = index
			routes = append(routes, Route{TrainNumber: event.TrainNumber})
		}

		routes[index].Events = append(routes[index].Events, event)
	}

	return routes
}
