// Package cli implements the interactive EcoTracker shell: account signup
// and login, logging eco-actions, and viewing history and statistics. It is
// a thin view layer; all state lives behind the services it calls.
package cli
