// Package trec reads the flat TREC-style files an INST evaluation consumes: relevance
// judgements (qrels), ranked runs, and per-topic T values. Each file is read fully into
// memory and indexed by topic; the resulting stores are not modified after loading.
package trec
