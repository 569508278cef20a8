// Package mock provides test doubles for the provider package interfaces.
package mock
