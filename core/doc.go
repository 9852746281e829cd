// Package core contains the business logic for the Reading Display API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (FeedEntry, ActivityRecord, CanonicalBook, ChallengeState)
// - extract: Regex cascades for progress, author, title, cover, and challenge counters
// - activity: Entry classification, per-book grouping, and fusion into one record
// - challenge: Two-strategy challenge counter lookup with its own cache slot
// - reading: The cache-gated orchestrator behind the display endpoint
// - services: Upstream-facing helpers such as the profile page scraper
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Extraction and fusion are pure functions over fetched data
//
// # Usage Example
//
//	import (
//	    "reading-display-api/core/challenge"
//	    "reading-display-api/core/interfaces"
//	    "reading-display-api/core/reading"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create services
//	challengeService := challenge.NewService(deps, profileScraper, 30*time.Minute)
//	readingService := reading.NewService(deps, challengeService, feedURL, 5*time.Minute)
//
//	// Get the current reading record
//	book := readingService.CurrentReading(ctx)
package core
