// Package youtube implements provider.Searcher against the YouTube Data
// API v3.
//
// One Search call costs two HTTP requests: a search.list page and one
// batched videos.list for runtimes. Calls are throttled with a shared
// token bucket so concurrent funnel workers stay inside the API quota.
package youtube
