// Package domain contains the core entities of the learning-progress
// system: users and their stats, vocabulary items, mastery records,
// lessons, activity events, and achievements. Entities validate
// themselves on construction and carry no infrastructure concerns.
package domain
