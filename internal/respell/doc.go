// Package respell rewrites words into a phonetic English spelling before
// transliteration, so that "physics" can be drawn as "fiziks". The OpenAI
// respeller sits behind a circuit breaker; Identity leaves words unchanged.
package respell
