// Package model contains the data structures representing iCalendar
// components consumed by the scan engine.
//
// These types are the default adapter implementation of the Calendar and
// Component capability sets (see the scan package): they are plain data
// holders, never behavior, in keeping with the rest of the engine pushing
// interpretation into dedicated services (zone.Resolver,
// timing.Compute, schedule.Build).
package model
