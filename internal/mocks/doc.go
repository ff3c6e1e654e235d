// Package mocks provides deterministic test doubles for the application's
// external-collaborator boundaries, chiefly the text-generation service.
package mocks
