package asset

// DefaultLifecycleConfig is the pattern session lifecycle graph in TOML
// Guards and actions named here are registered by the session package
const DefaultLifecycleConfig = `
initial = "Idle"

[states.Root]
transitions = [
  { trigger = "Detach", target = "Detached" },
]

[states.Idle]
transitions = [
  { trigger = "PointerDown", target = "Tracking" },
  { trigger = "PointerMove", target = "Tracking" },
]

[states.Tracking]
transitions = [
  { trigger = "PointerUp", target = "Evaluating", guard = "PathChosen" },
  { trigger = "PointerUp", target = "Idle" },
]

[states.Evaluating]
on_enter = ["Evaluate"]
on_exit = ["PinGuide"]
transitions = [
  { trigger = "Auto", target = "LockedOut", guard = "Exhausted" },
  { trigger = "Auto", target = "ResultShown" },
]

[states.ResultShown]
on_exit = ["CancelReset", "ClearGrid"]
transitions = [
  { trigger = "ResetFired", target = "Idle", guard = "CanReset" },
  { trigger = "PointerDown", target = "Tracking" },
  { trigger = "PointerMove", target = "Tracking" },
]

[states.LockedOut]
on_enter = ["AnnounceLockout"]
on_exit = ["CancelReset", "ClearGrid"]

[states.Detached]
on_enter = ["CancelReset"]
`
