// Package services implements the driving port interfaces.
// Services contain the core conversion logic: grouping annotations,
// matching dialogue lines to timestamps, resolving ambiguous matches,
// and rendering the markdown document.
//
// Services are pure Go and talk to the outside world only through the
// driven ports.
package services
