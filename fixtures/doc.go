// Package fixtures builds deterministic named test graphs (spec §8's
// six concrete scenarios): the three closed-form families (complete,
// path, cycle) plus literal edge lists for the Petersen, Clebsch, and
// Nauru graphs, which have none. Grounded on the teacher's `builder`
// package's deterministic-constructor style, trimmed to exactly the
// topologies this domain's test scenarios need.
package fixtures
