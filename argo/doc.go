// Package argo models vertical ocean profiles sampled by Argo floats and
// retrieves a representative profile from a point-observation source.
//
// # Argo data conventions
//
// An Argo float drifts at depth and periodically rises to the surface,
// sampling pressure, temperature, and salinity on the way up. One such
// ascent is a cast (or cycle); a float is identified by its WMO platform
// number and a cast by the (platform, cycle) pair. A source returns casts
// as flat point observations, one per sampled level, which
// [Source.PointsToProfiles] regroups into per-cast profiles.
//
// Pressure is measured in decibars (dbar), temperature in degrees Celsius,
// and salinity on the practical salinity scale (PSU). Missing measurements
// are NaN; sensors drop individual readings routinely, so any level may be
// partial.
//
// Sample order within a cast is whatever the source returned. Profiles are
// assumed depth-ascending because the sources queried here return them that
// way; no sort is applied.
//
// # Profile selection
//
// [GetProfile] queries a region/time/pressure envelope and scans the
// returned casts in source order, selecting the first whose count of
// present pressure samples reaches half the queried maximum pressure bound.
// The heuristic trades rigor for cheapness: a cast sampled at roughly
// 2 dbar resolution over the full band is dense enough for downstream
// acoustic work, and earlier sparse casts are skipped without comparing
// candidates.
package argo
