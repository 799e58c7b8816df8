// Package promptdeck holds module-wide metadata.
package promptdeck

// Version is the promptdeck release version.
const Version = "0.1.0"
