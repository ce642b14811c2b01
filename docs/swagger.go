// Package docs NYC Cat Tracker API.
//
// Records and retrieves geotagged cat sighting reports for the web client:
// create/list/get endpoints, image upload with static retrieval, and
// reporting endpoints that aggregate sightings by date range and source.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//	- text/csv
//
// swagger:meta
package docs
