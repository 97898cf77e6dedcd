// Package port implements the advisory port availability probe used by
// the check command.
//
// The launch sequence never consults this package: the URL printed in
// the startup banner is a convention communicated to the user, and the
// launched application binds (or fails to bind) the port on its own
// terms. The probe exists purely so `pdfmark-launcher check` can warn
// that something else already occupies the port.
package port
