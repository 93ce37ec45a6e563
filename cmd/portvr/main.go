// Portvr exports the Port VR training dashboard data and manages the local
// user session of the dashboard.
//
// Usage:
//
//	# List the exportable datasets
//	portvr datasets
//
//	# Export the worker list as a styled spreadsheet
//	portvr export --dataset workers --format xlsx
//
//	# Export the training history of one day as CSV
//	portvr export --dataset history --format csv --date 2024-03-15
//
//	# Export a JSON array of records from a file
//	portvr export --input registros.json --format xlsx
//
//	# Export the history every night at 03:00
//	portvr schedule --cron "0 3 * * *" --dataset history --format xlsx
//
//	# Re-export a file whenever it changes
//	portvr watch --input registros.json --format csv
//
//	# Show or change the profile and theme
//	portvr profile show
//	portvr profile set --name "Maria Souza"
//	portvr theme toggle
package main

func main() {
	Execute()
}
