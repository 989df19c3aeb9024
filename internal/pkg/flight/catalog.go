package flight

// catalog is the fixed set of flight offerings known to the system. It is
// compiled into the process and read-only at runtime; a file or
// service-backed lookup could replace it behind the same FindFlights
// contract.
var catalog = []Record{
	{FlightNo: "PK301", Departure: "Karachi", Arrival: "Islamabad", Time: "08:00 AM", Price: 15000},
	{FlightNo: "PK302", Departure: "Karachi", Arrival: "Lahore", Time: "02:00 AM", Price: 16500},
	{FlightNo: "PK303", Departure: "Karachi", Arrival: "Dubai", Time: "06:00 AM", Price: 78000},
	{FlightNo: "PK304", Departure: "Lahore", Arrival: "Islamabad", Time: "06:00 PM", Price: 16000},
	{FlightNo: "PK305", Departure: "Lahore", Arrival: "Karachi", Time: "07:00 PM", Price: 19000},
	{FlightNo: "PK306", Departure: "Lahore", Arrival: "Dubai", Time: "12:10 PM", Price: 86000},
	{FlightNo: "PK307", Departure: "Islamabad", Arrival: "Lahore", Time: "11:00 PM", Price: 16000},
	{FlightNo: "PK308", Departure: "Islamabad", Arrival: "Karachi", Time: "09:00 AM", Price: 19000},
	{FlightNo: "PK309", Departure: "Islamabad", Arrival: "Dubai", Time: "08:00 PM", Price: 96000},
	{FlightNo: "PK310", Departure: "Dubai", Arrival: "Karachi", Time: "10:00 PM", Price: 116000},
	{FlightNo: "PK311", Departure: "Dubai", Arrival: "Lahore", Time: "09:00 PM", Price: 110000},
	{FlightNo: "PK312", Departure: "Dubai", Arrival: "Islamabad", Time: "07:00 AM", Price: 118000},
}

// Catalog returns the full ordered sequence of flight records.
func Catalog() []Record {
	records := make([]Record, len(catalog))
	copy(records, catalog)

	return records
}
