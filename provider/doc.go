// Package provider defines the search provider abstraction consumed by the
// discovery funnel.
//
// The funnel depends only on the Searcher interface; concrete catalogs live
// in sub-packages (provider/youtube for the YouTube Data API). Provider
// failures are stage-local: a failing term contributes an empty
// result list and never aborts a discovery session.
package provider
