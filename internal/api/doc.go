// Package api handles incoming HTTP requests for student, course and account
// resources. Handlers decode and check request bodies, call the services,
// shape domain records into their JSON read forms and map errors to status
// codes. Validation failures are returned as a map of field name to messages.
package api
