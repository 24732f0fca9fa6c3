package model_test

import (
	"fmt"

	"github.com/matzehuels/archtower/pkg/model"
)

func ExampleModel_basic() {
	m := model.New()

	user, _ := m.AddPerson("User", "uses the dashboards")
	factory, _ := m.AddSoftwareSystem("Monkey Factory", "")
	frontend, _ := factory.AddContainer("frontend", "", "React")
	storage, _ := factory.AddContainer("storage", "", "Table Storage")
	storage.Tags().Add("database")

	user.Uses(frontend, "view dashboards")
	frontend.Uses(storage, "load telemetry data", model.WithTechnology("Table Storage SDK"))

	for _, e := range m.Elements() {
		fmt.Printf("%s %s [%s]\n", e.ID(), e.CanonicalName(), e.Tags())
	}
	for _, r := range m.Relationships() {
		fmt.Printf("%s -> %s: %s\n", r.Source().Name(), r.Destination().Name(), r.Description())
	}
	// Output:
	// 1 User [Element,Person]
	// 2 Monkey Factory [Element,Software System]
	// 3 Monkey Factory/frontend [Element,Container]
	// 4 Monkey Factory/storage [Element,Container,database]
	// User -> frontend: view dashboards
	// frontend -> storage: load telemetry data
}

func ExampleModel_Deploy() {
	m := model.New()
	factory, _ := m.AddSoftwareSystem("Monkey Factory", "")
	ingress, _ := factory.AddContainer("ingress", "", "IoT Hub")

	hub, _ := m.AddDeploymentNode(nil, "IoT Hub", "Ingress", "Azure IoT Hub", "DEV", 2)
	inst, _ := hub.Deploy(ingress)

	fmt.Println(inst.Element().Name(), "on", inst.Node().Name())
	fmt.Println("environment:", inst.Environment(), "replicas:", inst.Count())
	// Output:
	// ingress on IoT Hub
	// environment: DEV replicas: 2
}
