// Package messaging holds the inbox state of the current user: the
// conversation list with its role filter and selection, the thread of the
// selected conversation and the outgoing message.
//
// Blocking operations log through the logger stored under config.KeyLogger
// and stay silent when there is none. Loggers are not safe for concurrent
// use, so callers that run operations from several goroutines give each call
// its own logger.
package messaging
