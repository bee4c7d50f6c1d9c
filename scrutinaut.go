// Package scrutinaut fetches web pages and summarizes their content: title,
// headings, links, meta description, images and OpenGraph metadata.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, etree/).
package scrutinaut
