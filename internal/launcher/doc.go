// Package launcher implements the launch sequence for the PDF Content
// Bookmark Generator: resolve the working directory to the binary's own
// location, verify the entry point, print the localized startup banner,
// and hand execution off to the interpreter with the terminal attached.
//
// All user-facing text is Simplified Chinese, matching the application
// it launches. The two precondition failures each print a distinct
// diagnostic pair and then block on a press-Enter prompt so a terminal
// window opened by double-click stays readable before the process exits.
package launcher
