// Package logging sets up the process-wide zerolog logger.
//
// Profiles and INFOSTR_LOG_* environment overrides pick the level and
// output format. Apply builds and installs a logger from an explicit
// Config (used by the config package), and Component hands out child
// loggers tagged with a component name. Library entry points such as
// arena.New never log; callers opt in by passing a logger to
// arena.NewProjector.
package logging
