// Package main provides the entry point for the seoaudit CLI.
//
// seoaudit analyzes websites for SEO health: page speed, mobile
// readiness, meta tags, heading structure, content quality, and more,
// aggregated into a weighted score per website type.
//
// Usage:
//
//	seoaudit serve
//	seoaudit scan <url>
//
// See --help for all available options.
package main

// main is the entry point for seoaudit.
func main() {
	Execute()
}
