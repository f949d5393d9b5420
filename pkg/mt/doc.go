/*
Package mt provides a 32-bit Mersenne Twister (MT19937) pseudo-random generator.

The output sequence for a given seed matches the reference implementation by Matsumoto and Nishimura, which is what allows keys to be regenerated from a seed instead of being stored.
This is NOT a cryptographically secure generator, and must not be used where unpredictability matters.

A Twister is not safe for concurrent use. Create one per logical operation and discard it afterward.
*/
package mt
