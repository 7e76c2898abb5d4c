package interval

// SetupEnvironment exists for parity with the original library's
// setup_floating_point_environment, which toggles the hardware rounding
// mode and masks floating-point exceptions once at process start. This
// package never relies on the ambient rounding mode — every operation
// rounds explicitly via roundDown/roundUp — so there is nothing to
// configure; SetupEnvironment is a documented no-op kept so that code
// ported from the original's entry points has somewhere to call.
func SetupEnvironment() {}
