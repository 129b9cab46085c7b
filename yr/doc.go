// Package yr provides a Go client library for the yr.no XML weather
// service, delivered by the Norwegian Meteorological Institute and the NRK.
//
// The client retrieves the periodic and hour-by-hour forecast documents for
// a place, caches the raw XML on disk, and parses them into a Location
// aggregate with typed, time-windowed query accessors.
//
// Basic usage:
//
//	client, err := yr.NewClient("/tmp/yr-cache")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	loc, err := client.Location(context.Background(), "Norway/Oslo/Oslo/Oslo")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if current, ok := loc.CurrentForecast(); ok {
//		temp, _ := current.Temperature("")
//		symbol, _ := current.Symbol("")
//		fmt.Printf("%s: %s°C, %s\n", loc.Name(), temp, symbol)
//	}
//
//	tomorrow := time.Now().AddDate(0, 0, 1)
//	for _, f := range loc.HourlyForecastsBetween(time.Now(), tomorrow) {
//		fmt.Println(f.From(), f.WindIconKey())
//	}
//
// Callers who already hold the two XML documents (tests, alternate
// transports) can skip the fetch layer entirely with ParseLocation.
//
// The place identifier must match the path used on the yr.no site, e.g.
// "Norway/Vestfold/Sandefjord/Sandefjord". Note that the service terms
// require displaying the attribution returned by Location.CreditText,
// linked to Location.CreditURL.
package yr
