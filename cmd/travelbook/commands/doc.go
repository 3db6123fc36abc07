// Package commands defines the travelbook CLI and wires dependencies for subcommands.
//
// Commands
//
//   - contact add|edit|delete|list|find   Manage the address book
//   - trip add|edit|delete|list|find      Manage the trip book
//   - clear                               Empty both books
//
// # Implementation
//
// The root command loads configuration and builds the app (logger, book store, model)
// before any subcommand runs. Subcommands only talk to the model. After a subcommand
// succeeds the root saves the books if, and only if, their contents changed.
//
// Indexes given to edit and delete are 1-based positions in the list as shown by
// list or find.
package commands
