// Package presenter implements the presentation session: the controller
// state machine over a parsed deck, the host/surface contracts it drives,
// and a Bubble Tea model that hosts a session in a terminal.
//
// A Controller owns all session state (deck, current slide, regions,
// surfaces, recorded option overrides) for the lifetime of one session.
// Hosts deliver navigation, resize, and close events as explicit method
// calls; a Closed controller is never restarted.
package presenter
