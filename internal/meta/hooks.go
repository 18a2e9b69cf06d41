package meta

// HookExecution is one smart-contract hook invocation recorded in the
// metadata. A structural pass-through, not a derived computation.
type HookExecution struct {
	HookAccount          string
	HookHash             string
	HookResult           uint32
	HookReturnCode       string
	HookReturnString     string
	HookStateChangeCount uint32
	HookEmitCount        uint32
	HookExecutionIndex   uint32
	HookInstructionCount string
}

// HookExecutions returns the hook execution records, wire order preserved.
func (m *Meta) HookExecutions() []HookExecution {
	return m.hookExecutions
}

func parseHookExecutions(raw map[string]any) []HookExecution {
	list, ok := raw["HookExecutions"].([]any)
	if !ok {
		return nil
	}

	var out []HookExecution
	for _, entry := range list {
		wrapper, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		inner, ok := wrapper["HookExecution"].(map[string]any)
		if !ok {
			continue
		}

		exec := HookExecution{
			HookAccount:          str(inner, "HookAccount"),
			HookHash:             str(inner, "HookHash"),
			HookReturnCode:       str(inner, "HookReturnCode"),
			HookReturnString:     str(inner, "HookReturnString"),
			HookInstructionCount: str(inner, "HookInstructionCount"),
		}
		if v, ok := uint32Field(inner, "HookResult"); ok {
			exec.HookResult = v
		}
		if v, ok := uint32Field(inner, "HookStateChangeCount"); ok {
			exec.HookStateChangeCount = v
		}
		if v, ok := uint32Field(inner, "HookEmitCount"); ok {
			exec.HookEmitCount = v
		}
		if v, ok := uint32Field(inner, "HookExecutionIndex"); ok {
			exec.HookExecutionIndex = v
		}
		out = append(out, exec)
	}
	return out
}
