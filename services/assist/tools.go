package assist

// systemPrompt carries the two behavioral invariants the model must
// follow. Checkpoints that already have an id keep their coordinates, and
// photo requirements are never volunteered.
const systemPrompt = `You help people build location-based quest events.
You answer briefly and propose changes only through tool calls.

Rules you must never break:
1. Never change the coordinates of a checkpoint that already has an id.
2. Only set photoRequired on a checkpoint when the user explicitly asks for a photo task.`

// toolDefinitions are the static schemas the model is allowed to call.
// They mirror the EventConfiguration shape; the proxy passes the calls
// through untouched.
func toolDefinitions() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"type": "function",
			"function": map[string]interface{}{
				"name":        "update_event",
				"description": "Patch fields on the event being configured. Omit fields that should stay as they are.",
				"parameters": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"name":             map[string]interface{}{"type": "string"},
						"description":      map[string]interface{}{"type": "string"},
						"category":         map[string]interface{}{"type": "string"},
						"winCondition":     map[string]interface{}{"type": "string", "enum": []string{"fastest_time", "most_points"}},
						"checkpointOrder":  map[string]interface{}{"type": "string", "enum": []string{"sequential", "free"}},
						"scoreModel":       map[string]interface{}{"type": "string", "enum": []string{"basic", "rogaining"}},
						"timeLimitMinutes": map[string]interface{}{"type": "integer"},
						"parTimeMinutes":   map[string]interface{}{"type": "integer"},
						"pointsPerMinute":  map[string]interface{}{"type": "number"},
					},
				},
			},
		},
		{
			"type": "function",
			"function": map[string]interface{}{
				"name":        "add_checkpoints",
				"description": "Append new checkpoints to the event. New checkpoints have no id yet.",
				"parameters": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"checkpoints": map[string]interface{}{
							"type": "array",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"name":          map[string]interface{}{"type": "string"},
									"description":   map[string]interface{}{"type": "string"},
									"points":        map[string]interface{}{"type": "integer"},
									"mandatory":     map[string]interface{}{"type": "boolean"},
									"photoRequired": map[string]interface{}{"type": "boolean"},
									"challenge":     map[string]interface{}{"type": "string"},
									"quiz": map[string]interface{}{
										"type": "object",
										"properties": map[string]interface{}{
											"question":     map[string]interface{}{"type": "string"},
											"options":      map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
											"correctIndex": map[string]interface{}{"type": "integer"},
										},
									},
								},
								"required": []string{"name"},
							},
						},
					},
					"required": []string{"checkpoints"},
				},
			},
		},
		{
			"type": "function",
			"function": map[string]interface{}{
				"name":        "analyze_quality",
				"description": "Return a structured quality report for the current event instead of changing it.",
				"parameters": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"score": map[string]interface{}{"type": "integer", "description": "0-100"},
						"issues": map[string]interface{}{
							"type":  "array",
							"items": map[string]interface{}{"type": "string"},
						},
						"suggestions": map[string]interface{}{
							"type":  "array",
							"items": map[string]interface{}{"type": "string"},
						},
					},
					"required": []string{"score"},
				},
			},
		},
	}
}
