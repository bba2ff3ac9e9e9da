// Package cli implements the authctl commands.
//
// Server-side commands (register, login, me, delete, ping) talk to a running
// server through the client package. Offline helpers (hash, secret) produce a
// bcrypt hash for seeding a store and a random signing secret.
//
// Results go to the output writer, prompts to the prompt writer, so
// `authctl login -u alice` can be captured into a shell variable. Protected
// commands read the token from -token or the FEASTKEEPER_TOKEN environment
// variable.
package cli
