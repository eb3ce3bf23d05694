// Package domain contains the core domain model for NSMS: newspapers, issues,
// editors and subscribers, plus the derived figures (subscriber counts,
// revenue, missing issues) computed from them.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// net/http, or the filesystem. The agency registry and infra adapters map into/from these types.
package domain
