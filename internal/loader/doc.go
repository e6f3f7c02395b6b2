// Package loader reads the visitor list from a JSON document.
//
// The document is a JSON array of visitor objects:
//
//	[
//	  {
//	    "name": "Ann",
//	    "surname": "Lee",
//	    "favoriteBooks": [
//	      {"name": "Emma", "author": "Jane Austen", "publishingYear": 1815}
//	    ]
//	  }
//	]
//
// Parsing walks the known shape with github.com/buger/jsonparser instead of
// reflecting into the structs. Unknown keys are ignored, missing or null fields
// take their zero value, and a missing or null favoriteBooks list becomes an
// empty list. A known key holding the wrong JSON type is a parse error.
//
// LoadOrEmpty is the load boundary used by the CLI: any failure is reported to
// the error stream and converted into an empty visitor list so that every
// report still runs.
package loader
