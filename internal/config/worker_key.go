package config

type WorkerKeyStruct struct {
	PersistDemoBookingsQueue string
}

var WorkerKey = &WorkerKeyStruct{
	PersistDemoBookingsQueue: "persist_demo_bookings_queue",
}
