package codegen_test

import (
	"fmt"
	"log"

	"github.com/bootgen-dev/bootgen/internal/codegen"
	"github.com/bootgen-dev/bootgen/internal/codegen/java"
	"github.com/bootgen-dev/bootgen/internal/naming"
)

func Example_usage() {
	names := naming.Derive("order item")

	// Method 1: Direct usage
	svc, err := codegen.Render(java.NewServiceGenerator("com.example.shop"), names)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(svc.Path)

	// Method 2: Using the registry, in dependency order
	for _, kind := range java.Kinds() {
		gen, err := codegen.DefaultRegistry.Get(kind, "com.example.shop")
		if err != nil {
			log.Fatal(err)
		}

		art, err := codegen.Render(gen, names)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s -> %s\n", kind, art.Path)
	}

	// Output:
	// orderItem/service/OrderItemService.java
	// application -> orderItem/Application.java
	// entity -> orderItem/entity/OrderItem.java
	// repository -> orderItem/repository/OrderItemRepository.java
	// service -> orderItem/service/OrderItemService.java
	// controller -> orderItem/controller/OrderItemController.java
	// openapi -> orderItem/config/OpenApiConfig.java
}
