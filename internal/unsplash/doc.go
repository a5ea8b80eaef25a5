// Package unsplash provides an HTTP client for the Unsplash photo API.
//
// # Overview
//
// This package builds request URLs for the two read-only endpoints getphotos
// needs, issues the requests, and decodes the JSON payloads into Photo values.
// It holds no state besides the base URL and the access key.
//
// # Endpoints
//
//   - GET /photos?client_id=..&page=..: a flat JSON list of recent photos
//   - GET /search/photos?client_id=..&page=..&query=..: an object whose
//     "results" field holds the matching photos
//
// Fetch picks between them: a non-empty query searches, an empty one lists.
//
// # Client Usage
//
//	client, err := unsplash.NewClient("", os.Getenv("UNSPLASH_ACCESS_KEY"))
//	if err != nil {
//		return err
//	}
//
//	photos, err := client.Fetch(ctx, "mountains", 1)
//	if err != nil {
//		log.Printf("fetch failed: %v", err)
//	}
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and Accept-Version: v1
//   - Include User-Agent: getphotos/0.1
//   - Have a 15-second timeout
//
// # Error Handling
//
// There is a single failure class. Transport errors, HTTP status >= 400 and
// undecodable bodies all wrap ErrRequestFailed, so callers test with
// errors.Is and do not branch on the cause.
package unsplash
