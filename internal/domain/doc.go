// Package domain models Argo float profiles enriched with derived acoustic
// properties.
//
// # Data Source
//
// Profiles originate from the international Argo program, a fleet of
// autonomous floats that drift at depth and periodically rise to the surface
// while sampling pressure, temperature, and salinity. The observations are
// served by ERDDAP tabledap endpoints; Ifremer hosts the reference deployment
// at https://erddap.ifremer.fr/erddap (dataset "ArgoFloats"). The adapter
// queries point observations for a region and time window and regroups them
// into per-cast profiles.
//
// # Argo Data Conventions
//
// Cast identity:
//
//	A float is named by its WMO platform number (e.g. "6902746"). Each
//	surfacing is a cycle, numbered from 1, and one platform/cycle pair is
//	one cast. A cast's levels arrive shallowest first.
//
// Units:
//
//	Pressure    decibar (dbar)
//	Temperature degrees Celsius (ITS-90)
//	Salinity    practical salinity units (PSS-78)
//
// Missing readings:
//
//	Argo quality control masks bad samples, so any level may lack one or
//	more readings. Missing values are carried as NaN and never invented;
//	enrichment skips levels that are not complete.
//
// # Depth Approximation
//
// Enrichment substitutes pressure in dbar for depth in meters when evaluating
// the sound speed equation. One dbar of hydrostatic pressure corresponds to
// slightly less than one meter of seawater; over the 0-2000 dbar Argo range
// the difference stays within about 2 percent, well inside the spread between
// sound speed equations themselves.
//
// # Mixed Layer Depth
//
// The mixed layer estimate uses the temperature threshold criterion of
// de Boyer Montégut et al. (2004): take the shallowest level at 10 m or
// deeper as the reference, then report the depth of the first deeper level
// whose temperature differs from the reference by more than 0.2 °C. A cast
// that never crosses the threshold has no detectable mixed layer and the
// summary omits it, along with the duct cutoff frequency derived from it.
//
// # ID Generation
//
// Event IDs are deterministic SHA-256 hashes of platform|cycle|time. This
// enables idempotent upserts downstream (ON CONFLICT DO NOTHING) and replay
// safety without distributed coordination. See [generateID].
package domain
