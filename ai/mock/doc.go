// Package mock provides test double implementations of AI service interfaces.
//
// This package contains a mock implementation of ai.ZeroShotClassifier for
// use in unit tests. The mock allows tests to run without an external model
// service and enables controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	clf := mock.NewMockClassifier()
//	scores, err := clf.Classify(ctx, "test", labels)
//
//	// Custom behavior injection
//	clf := mock.NewMockClassifier().
//	    WithClassifyFunc(func(ctx context.Context, text string, labels []string) ([]ai.LabelScore, error) {
//	        return []ai.LabelScore{{Label: labels[0], Score: 0.9}}, nil
//	    })
//
//	// Check call counts
//	count := clf.CallCount()
package mock
