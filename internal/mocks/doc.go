// Package mocks provides centralized mock implementations for testing.
//
// Store mocks embed testify's mock.Mock and are driven with On/Return.
// Service and auth mocks use function fields: set the Fn for the behavior a
// test needs and leave the rest at their defaults.
//
//	students := new(mocks.MockStudentStore)
//	students.On("GetByID", mock.Anything, id).Return(student, nil)
//
//	svc := &mocks.MockStudentService{
//	    GetStudentFn: func(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
//	        return student, nil
//	    },
//	}
package mocks
