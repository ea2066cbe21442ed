package internal

// SDKVersion is the current version string of the SDK. This is updated by the release process.
const SDKVersion = "1.0.0"
