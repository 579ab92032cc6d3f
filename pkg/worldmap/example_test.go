package worldmap_test

import (
	"fmt"

	"github.com/matzehuels/xrpg/pkg/worldmap"
)

func ExampleMap_Mermaid() {
	m := worldmap.New()
	town := m.AddNode("Home Town", worldmap.Circle)
	forest := m.AddNode("Enchanted Forest", worldmap.Stadium)
	cave := m.AddNode("Dragon's Cave", worldmap.Rhombus)
	m.AddBidirectionalPath(town, forest, 15)
	m.AddPath(forest, cave, 40)

	fmt.Print(m.Mermaid())
	// Output:
	// graph LR
	//     0(("Home Town"))
	//     1(["Enchanted Forest"])
	//     2{"Dragon's Cave"}
	//     0 <--> |15 min| 1
	//     1 --> |40 min| 2
	//     classDef default fill:#f9f9f9,stroke:#333,stroke-width:2px
	//     linkStyle default stroke:#666,stroke-width:2px
}

func ExampleMap_RemoveNode() {
	m := worldmap.New()
	a := m.AddNode("Keep", worldmap.Rectangle)
	b := m.AddNode("Ruin", worldmap.Cylinder)
	m.AddBidirectionalPath(a, b, 5)

	m.RemoveNode(b)
	_, found := m.Index("Ruin")
	fmt.Println("Ruin found:", found)
	fmt.Println("Keep neighbors:", m.Neighbors(a))
	fmt.Println("Next index:", m.AddNode("Tower", worldmap.Hexagon))
	// Output:
	// Ruin found: false
	// Keep neighbors: []
	// Next index: 2
}

func ExampleMap_IsBidirectional() {
	m := worldmap.New()
	a := m.AddNode("Gate", worldmap.Rectangle)
	b := m.AddNode("Yard", worldmap.Rectangle)
	m.AddPath(a, b, 3)
	fmt.Println(m.IsBidirectional(a, b))
	m.AddPath(b, a, 4)
	fmt.Println(m.IsBidirectional(a, b))
	// Output:
	// false
	// true
}
