package typography

// WeightFromName exposes the subfamily weight classifier to tests.
var WeightFromName = weightFromName
