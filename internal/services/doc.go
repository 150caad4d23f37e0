// Package services contains clients for the external collaborators of the
// directory. The only one today is [SeedClient], which fetches the static
// seed document consulted when the persistence backend holds no channels.
package services
